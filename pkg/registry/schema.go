// pkg/registry/schema.go
package registry

type ActivityRegistry struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Activities  []Activity `json:"activities"`
}

// Activity describes one task type a process model can reference.
type Activity struct {
	DisplayName string   `json:"displayName"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	TaskType    string   `json:"taskType"`
	Session     string   `json:"session,omitempty"` // role that must be logged in
	ErrorCodes  []string `json:"errorCodes"`
	Retries     int      `json:"retries"`
	Tags        []string `json:"tags,omitempty"`
}
