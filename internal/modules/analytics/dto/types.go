package dto

type EventInput struct {
	Name     string
	Category string
	Label    string
	Value    *int64
}

type StatsOutput struct {
	Sent    int
	Dropped int
	Failed  int
}
