package verification

import "github.com/JaimeStill/newsdesk/pkg/pagination"

// System defines the public contract for the verification log.
type System interface {
	Handler() *Handler

	// Log appends one record built from entry and returns it.
	Log(entry Entry) Record
	Len() int
	// Records returns a copy of the log in append order.
	Records() []Record
	Find(id int) (*Record, error)
	// List returns a page of records, newest first.
	List(page pagination.PageRequest) *pagination.PageResult[Record]

	Departments() []DepartmentSummary
	Statistics() Statistics
}
