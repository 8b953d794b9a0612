// Package model defines the core data structures used throughout
// the playlist-filter application.
//
// # Entry
//
// Entry is one channel of an M3U playlist: the #EXTINF directive line,
// the stream URL that follows it, and the group-title extracted from the
// directive:
//
//	entry := model.Entry{
//	    Directive: `#EXTINF:-1 group-title="News",CCTV-13`,
//	    URL:       "http://example.com/cctv13.m3u8",
//	    Group:     "News",
//	}
//
// # Result
//
// Result is the outcome of one filter pass. It holds the filtered
// playlist text and the number of kept entries per group:
//
//	result := model.NewResult("#EXTM3U")
//	result.Add(entry)
//	fmt.Println(result.Total())  // 1
//	fmt.Println(result.Groups()) // [News]
package model
