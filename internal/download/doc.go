// Package download fetches the remote dataset bundles over HTTP. The client
// is injectable so fetch orchestration can be exercised without network
// access.
package download
