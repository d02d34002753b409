package request

import "strings"

// TableViewQuery binds the ?view= parameter of the quote routes.
//
// Accepted values: "full", "human", or empty for the default of each route.

type TableViewQuery struct {
	View string `form:"view"`
}

func (q TableViewQuery) ResolveView() string {
	return strings.ToLower(strings.TrimSpace(q.View))
}

func (q TableViewQuery) IsHuman() bool {
	return q.ResolveView() == "human"
}
