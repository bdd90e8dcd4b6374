package sources

// The WEB client is split across files by responsibility:
//   web_config.go    ClientConfig and the lazily refreshed shared config cache
//   web_ytcfg.go     locating and parsing the ytcfg.set literal in the landing page
//   web_extract.go   pure traversal of search, browse, next and continuation responses
//   web_paginate.go  continuation-token pagination
//   web_innertube.go WebClient, the Innertube requests built on the pieces above
//   web_renderer.go  flattening renderer nodes into engine.YouTubeVideo
