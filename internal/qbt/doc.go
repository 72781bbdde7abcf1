// Package qbt defines the [Client] interface for the qBittorrent Web API
// and implements it over HTTP.
//
// # Session model
//
// qBittorrent authenticates a form POST to /api/v2/auth/login and issues an
// SID session cookie; every later call rides on that cookie. [WebClient]
// keeps the cookie in an in-process jar. An SID captured elsewhere (for
// example from a browser-exported cURL command) can be injected with
// [WebClient.UseSession] to skip the login round trip.
//
// # Request pacing
//
// Bulk workflows issue one trackers lookup per torrent, which on large
// instances means hundreds of requests in a tight loop. [WebClient] waits
// on a rate limiter before every request so the Web UI stays responsive
// while a workflow runs.
//
// All calls are synchronous; a call that hangs blocks the caller until the
// transport timeout fires.
package qbt
