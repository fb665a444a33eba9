package domain

// RootGroupID is the node id of the top-level group every session starts in.
const RootGroupID = "R3JvdXA6MQ=="

// RootGroupPath is the display path of the root group.
const RootGroupPath = "/Universe"

// Group is a node in the group tree.
type Group struct {
	ID   string
	Name string
}

// Thread is a discussion inside a group, as listed on the group page.
type Thread struct {
	ID         string
	Title      string
	AuthorID   string
	AuthorName string
}
