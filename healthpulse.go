// Package healthpulse polls health-news RSS feeds and, when a feed summary
// is too short, extracts the article body and a representative image from
// the source page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, gofeed/).
package healthpulse
