package entity

type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Icon      string `json:"icon"`
	TaskCount int    `json:"task_count"`
}

type ProjectInput struct {
	Name  string
	Color string
	Icon  string
}

type ProjectPatch struct {
	Name  *string
	Color *string
	Icon  *string
}
