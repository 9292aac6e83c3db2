package entity

type Point struct {
	Latitude  float64
	Longitude float64
}

type BoundingBox struct {
	North float64
	South float64
	East  float64
	West  float64
}

type GeocodingResult struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
	Type        string
	Importance  float64
	BoundingBox *BoundingBox
}

type Marker struct {
	Position Point
	Label    string
	Color    string
	Size     int
}

type Polyline struct {
	Points []Point
	Color  string
	Width  int
}

type Polygon struct {
	Points      []Point
	FillColor   string
	StrokeColor string
	StrokeWidth int
}
