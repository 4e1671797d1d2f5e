package model

// Stats is a read-only snapshot of the quality of a Boat.  It is never
// stored apart from the boat that produced it.
type Stats struct {
    TotalPaddlers        int                `json:"total_paddlers"`
    LeftWeight           float64            `json:"left_weight"`
    RightWeight          float64            `json:"right_weight"`
    WeightDifference     float64            `json:"weight_difference"`
    PreferencesSatisfied int                `json:"preferences_satisfied"`
    GenderDistribution   GenderDistribution `json:"gender_distribution"`
    FrontBackWeight      FrontBackWeight    `json:"front_back_weight"`
}

// GenderDistribution counts seated row paddlers by gender.
type GenderDistribution struct {
    Male    int `json:"male"`
    Female  int `json:"female"`
    Neutral int `json:"neutral"`
}

// Total returns the number of members counted.
func (g GenderDistribution) Total() int { return g.Male + g.Female + g.Neutral }

// FrontBackWeight splits the seated weight between rows 1-5 and 6-10.
type FrontBackWeight struct {
    FrontWeight float64 `json:"front_weight"`
    BackWeight  float64 `json:"back_weight"`
}
