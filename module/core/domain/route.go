package domain

// ExpectedPath is a vehicle's planned route: an ordered sequence of at
// least two vertices. It is supplied per evaluation and never persisted
// by the evaluators.
type ExpectedPath []Point
