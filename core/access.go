package core

// CanAccess reports whether user may read doc. A document is visible iff
// the requester is in the Admin department or in the document's own
// department. This is the sole access-control rule: callers must apply it
// before scoring, snippeting, or returning any document metadata.
func CanAccess(user User, doc *Document) bool {
	if doc == nil {
		return false
	}
	return user.Department == DepartmentAdmin || doc.Department == user.Department
}
