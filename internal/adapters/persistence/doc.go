// Package persistence keeps the phonebook file on disk in step with the
// in-memory store.
//
// The file holds a single JSON document:
//
//	{ "phonebook": [ { "id": 1, "name": "Ann Lee", "number": "111" } ] }
//
// Load reads it under a shared advisory lock and re-sorts the contacts, since
// the file may have been edited by hand. Save rewrites the whole document
// under an exclusive advisory lock. Writer runs both on one dedicated
// goroutine so request handlers never wait on the disk while holding the
// store lock.
package persistence
