package domain

import "time"

// Project is a user-curated list of crafting targets. The public UUID is
// shareable and read-only; mutations require the private UUID.
type Project struct {
	ID          int       `json:"project_id"`
	PublicUUID  string    `json:"public_uuid"`
	PrivateUUID string    `json:"private_uuid,omitempty"`
	Name        string    `json:"project_name"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// ProjectItem is one target item in a project with its desired count.
type ProjectItem struct {
	ItemID int `json:"item_id"`
	Count  int `json:"count"`
}
