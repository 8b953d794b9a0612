// Package playlist parses and filters extended M3U playlists.
//
// # Format
//
// The input is line oriented:
//
//	#EXTM3U x-tvg-url="..."
//	#EXTINF:-1 tvg-id="CCTV1" group-title="News",CCTV-1
//	http://example.com/cctv1.m3u8
//
// Each #EXTINF directive is paired with the next line that is neither
// blank nor a comment. That line is the stream URL. A directive without a
// URL before the next directive or the end of input is dropped.
//
// # Filtering
//
// Filter keeps the entries whose group-title contains any of the given
// keywords. Matching is a case-sensitive substring test:
//
//	result := playlist.Filter(text, []string{"News", "Sports"})
//	os.WriteFile("playlist.m3u", []byte(result.Text), 0644)
//	for _, gc := range result.SortedCounts() {
//	    fmt.Printf("%s: %d\n", gc.Group, gc.Count)
//	}
//
// Filtering an already filtered playlist with the same keywords returns
// the same text.
package playlist
