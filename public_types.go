package instapaper

import "github.com/mycelian/instapaper/internal/types"

// Public type aliases so SDK consumers can import only the instapaper package.
type (
	Credentials = types.Credentials
	ListOptions = types.ListBookmarksRequest

	// Domain entities
	Bookmark  = types.Bookmark
	User      = types.User
	Highlight = types.Highlight

	// Responses
	List = types.List
)

// Folder identifiers accepted by ListOptions.FolderID.
const (
	FolderUnread  = types.FolderUnread
	FolderStarred = types.FolderStarred
	FolderArchive = types.FolderArchive
)
