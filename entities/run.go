package entities

// Run is the outcome of one genetic algorithm run
type Run struct {
	ID         string  `json:"id"`
	Genome     string  `json:"genome"`
	Fitness    float64 `json:"fitness"`
	Iterations int     `json:"iterations"`
	Converged  bool    `json:"converged"`
	// Population holds the genomes of the last population, usable to seed a new run
	Population   []string `json:"population"`
	CreationTime string   `json:"creation_time"`
}
