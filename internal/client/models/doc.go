// Package models defines the content records persisted by realverse:
// characters, fan art, forum threads with their posts, and blog posts.
//
// Records are plain values. Collections replace a record to change it rather
// than mutating it in place, and every record carries a string id unique
// within its collection. Timestamps are unix milliseconds.
package models
