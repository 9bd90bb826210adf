package mock

import "strconv"

// Response is a canned backend reply for a single request key
type Response struct {
	Status int        `yaml:"status"`
	Table  [][]string `yaml:"table"`
}

// StatusText returns the status code as display text
func (r Response) StatusText() string {
	return strconv.Itoa(r.Status)
}

// Dataset holds the two read-only fixture tables.
// A Dataset is never modified after construction, so it can be shared freely.
type Dataset struct {
	loadView map[string]Response // filename -> response
	search   map[string]Response // term or "<column> <term>" -> response
}

// NewDataset builds a Dataset from copies of the given maps
func NewDataset(loadView, search map[string]Response) *Dataset {
	return &Dataset{
		loadView: copyResponses(loadView),
		search:   copyResponses(search),
	}
}

// LoadView looks up the response for loading or viewing a file
func (d *Dataset) LoadView(filename string) (Response, bool) {
	return lookup(d.loadView, filename)
}

// Search looks up the response for a search key
func (d *Dataset) Search(key string) (Response, bool) {
	return lookup(d.search, key)
}

// Size returns the number of LoadView and Search fixtures
func (d *Dataset) Size() (loadView, search int) {
	return len(d.loadView), len(d.search)
}

func lookup(m map[string]Response, key string) (Response, bool) {
	resp, ok := m[key]
	if !ok {
		return Response{}, false
	}
	return resp.clone(), true
}

func (r Response) clone() Response {
	return Response{Status: r.Status, Table: CloneTable(r.Table)}
}

// CloneTable deep-copies a table so callers can't alias fixture rows
func CloneTable(table [][]string) [][]string {
	if table == nil {
		return nil
	}
	out := make([][]string, len(table))
	for i, row := range table {
		out[i] = append([]string(nil), row...)
	}
	return out
}

func copyResponses(in map[string]Response) map[string]Response {
	out := make(map[string]Response, len(in))
	for k, v := range in {
		out[k] = v.clone()
	}
	return out
}
