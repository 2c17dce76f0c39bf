// Package fetch orchestrates making the dataset available locally: write and
// disk-space preflight, a lock file to serialize concurrent fetches, bundle
// download and extraction, and a final layout verification.
package fetch
