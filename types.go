package qap

const (
	FORMAT_TXT  = "txt"
	FORMAT_JSON = "json"

	TYPE_QAP = "QAP"
)

// QAPInstance holds one generated problem instance: the pairwise distances
// between the locations and the pairwise flows between the facilities,
// together with the parameters it was generated from.
type QAPInstance struct {
	Name    string `json:"name"`
	Comment string `json:"comment,omitempty"`
	Type    string `json:"type"`

	Size     int   `json:"size"`
	Clusters int   `json:"clusters,omitempty"`
	Seed     int64 `json:"seed,omitempty"`

	Distance [][]int `json:"distance"`
	Flow     [][]int `json:"flow"`

	System *SysInfo `json:"system,omitempty"`
}

// SysInfo saves the basic system information
type SysInfo struct {
	Platform string
	CPU      string
	RAM      string
}
