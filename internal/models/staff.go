package models

type Staff struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type Hospital struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	RegionID int    `json:"region_id"`
}

type Region struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
