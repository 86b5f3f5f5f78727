package dto

// StatCard is one dashboard counter. Cards are role-shaped: the same counter
// can carry a different title (or be absent) depending on who is asking.
type StatCard struct {
	Title string `json:"title"`
	Value int    `json:"value"`
}

type DashboardStatsResponse struct {
	Role  string     `json:"role"`
	Cards []StatCard `json:"cards"`
}
