package domain

type SearchCategory string

const (
	SearchEvents SearchCategory = "events"
	SearchHosts  SearchCategory = "hosts"
	SearchUsers  SearchCategory = "users"
)

func (c SearchCategory) Valid() bool {
	return c == SearchEvents || c == SearchHosts || c == SearchUsers
}

type SearchResult struct {
	ObjectID string `json:"objectId"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`
}
