package qr

// StudentInfo is a directory entry used to pre-fill the visit form after a
// scan. The directory never validates or blocks record creation.
type StudentInfo struct {
	Name string
	Year string
}

var directory = map[string]StudentInfo{
	"KLU001": {Name: "Rahul Kumar", Year: "2nd Year BTech"},
	"KLU002": {Name: "Priya Sharma", Year: "3rd Year BTech"},
	"KLU003": {Name: "Amit Singh", Year: "1st Year BTech"},
	"KLU004": {Name: "Sneha Reddy", Year: "4th Year BTech"},
	"KLU005": {Name: "Vikram Patel", Year: "2nd Year MBA"},
}

// LookupStudent returns the directory entry for a student ID, if known
func LookupStudent(id string) (StudentInfo, bool) {
	info, ok := directory[id]
	return info, ok
}
