package dto

type SnapshotInput struct {
	Width  int
	Height int
	Frames int
	Seed   uint64
	Cores  int
	Path   string
}

type SnapshotOutput struct {
	Path        string
	Particles   int
	Links       int
	Frames      int
	FPS         int
	Suppressed  bool
	Connections bool
}

type BudgetInput struct {
	Width         int
	Height        int
	Cores         int
	ReducedMotion bool
}

type BudgetOutput struct {
	Suppressed  bool
	Particles   int
	FPS         int
	Connections bool
}
