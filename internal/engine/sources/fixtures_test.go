package sources

// Trimmed WEB responses used across tests.

const searchResponseJSON = `{
	"contents": {
		"twoColumnSearchResultsRenderer": {
			"primaryContents": {
				"sectionListRenderer": {
					"contents": [
						{
							"itemSectionRenderer": {
								"contents": [
									{"videoRenderer": {"videoId": "vid1", "title": {"runs": [{"text": "First"}]}, "longBylineText": {"runs": [{"text": "Alpha"}]}, "lengthText": {"simpleText": "3:32"}}},
									{"adSlotRenderer": {"slotId": "ad-1"}},
									{"videoRenderer": {"videoId": "vid2", "title": {"runs": [{"text": "Sec"}, {"text": "ond"}]}, "ownerText": {"runs": [{"text": "Beta"}]}, "lengthText": {"simpleText": "1:02:03"}}},
									{"shelfRenderer": {"title": {"simpleText": "People also watched"}}},
									{"videoRenderer": {"videoId": "vid3", "title": {"simpleText": "Third"}}}
								]
							}
						},
						{
							"continuationItemRenderer": {"continuationEndpoint": {"continuationCommand": {"token": "SEARCH_NEXT"}}}
						}
					]
				}
			}
		}
	}
}`

const watchWithMixJSON = `{
	"contents": {
		"twoColumnWatchNextResults": {
			"playlist": {
				"playlist": {
					"title": "Mix - First",
					"playlistId": "RDvid1",
					"contents": [
						{"playlistPanelVideoRenderer": {"videoId": "vid1", "title": {"simpleText": "First"}, "shortBylineText": {"runs": [{"text": "Alpha"}]}, "lengthText": {"simpleText": "3:32"}}},
						{"automixPreviewVideoRenderer": {}},
						{"playlistPanelVideoRenderer": {"videoId": "vid9", "title": {"simpleText": "Ninth"}}}
					]
				}
			}
		}
	}
}`

const watchWithoutMixJSON = `{
	"contents": {
		"twoColumnWatchNextResults": {
			"results": {"results": {"contents": []}}
		}
	}
}`

const playlistPageJSON = `{
	"metadata": {"playlistMetadataRenderer": {"title": "Road Trip"}},
	"contents": {
		"twoColumnBrowseResultsRenderer": {
			"tabs": [
				{
					"tabRenderer": {
						"content": {
							"sectionListRenderer": {
								"contents": [
									{
										"itemSectionRenderer": {
											"contents": [
												{
													"playlistVideoListRenderer": {
														"playlistId": "PLroad",
														"contents": [
															{"playlistVideoRenderer": {"videoId": "p1", "title": {"runs": [{"text": "One"}]}, "shortBylineText": {"runs": [{"text": "Band"}]}, "lengthSeconds": "61"}},
															{"playlistVideoRenderer": {"videoId": "p2", "title": {"runs": [{"text": "Two"}]}, "lengthSeconds": "3725"}},
															{"continuationItemRenderer": {"continuationEndpoint": {"continuationCommand": {"token": "TOKEN_A"}}}}
														]
													}
												}
											]
										}
									}
								]
							}
						}
					}
				}
			]
		}
	}
}`

const continuationPageJSON = `{
	"onResponseReceivedActions": [
		{
			"appendContinuationItemsAction": {
				"continuationItems": [
					{"playlistVideoRenderer": {"videoId": "p3", "title": {"runs": [{"text": "Three"}]}}},
					{"continuationItemRenderer": {"continuationEndpoint": {"continuationCommand": {"token": "TOKEN_B"}}}}
				]
			}
		}
	]
}`

const lastContinuationPageJSON = `{
	"onResponseReceivedActions": [
		{
			"appendContinuationItemsAction": {
				"continuationItems": [
					{"playlistVideoRenderer": {"videoId": "p4", "title": {"runs": [{"text": "Four"}]}}}
				]
			}
		}
	]
}`

const landingPageHTML = `<!DOCTYPE html>
<html><head>
<script nonce="abc">var ytcfg={d:function(){return window.yt&&yt.config_||ytcfg.data_||(ytcfg.data_={})}};</script>
<script nonce="abc">ytcfg.set({"INNERTUBE_API_KEY":"AIzaScraped","INNERTUBE_CONTEXT":{"client":{"hl":"en","gl":"US","visitorData":"CgtWSVNJVE9S","clientName":"WEB","clientVersion":"2.20260101.00.00","platform":"DESKTOP"}}}); window.ytcfg.obfuscatedData_ = [];</script>
</head><body></body></html>`

const landingPageWithoutConfigHTML = `<!DOCTYPE html><html><head><title>YouTube</title></head><body><p>consent required</p></body></html>`
