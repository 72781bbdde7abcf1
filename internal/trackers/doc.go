// Package trackers groups torrents by tracker URL and orchestrates bulk
// tracker mutations with progress feedback.
//
// # Aggregation
//
// [Aggregate] walks the torrent list in order, looks up each torrent's
// trackers, and folds them into a [TrackerMap] keyed by tracker URL. The
// map is rebuilt for every workflow invocation and displayed in
// lexicographic key order so repeated runs over the same data always show
// the same list.
//
// # Workflows
//
// [Engine] sequences the two bulk operations end to end: fetch torrents,
// aggregate, let the operator pick a group, confirm, then mutate every
// torrent in the group one request at a time, updating the progress bar
// inline with each unit of work. Everything runs on the single UI thread;
// a slow request visibly stalls the bar rather than racing it.
package trackers
