package dto

type SignalsOutput struct {
	ViewportWidth   int
	Cores           int
	Network         string
	ReducedMotion   bool
	FeaturesPresent bool
	HoverPointer    bool
}

type DescribeOutput struct {
	Tier    string
	Signals SignalsOutput
	Cursor  bool
	Ambient AmbientOutput
}

type AmbientOutput struct {
	Enabled     bool
	Particles   int
	FPS         int
	Connections bool
}
