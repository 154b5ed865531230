// Package batch reads word lists and transcribes them concurrently.
package batch
