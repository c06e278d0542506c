package managelinks

import (
	"link-admin/pkg/linksync"
)

// ResultMsg is emitted when the request phase of an operation finishes.
// The panel applies it on the update loop.
type ResultMsg struct {
	Result linksync.Result
}
