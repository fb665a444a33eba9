package app

// DataSource is everything the browsing UI reads from and writes to.
type DataSource interface {
	GroupService
	ThreadService
	UserService
}
