package catalog

// builtinDefinitions returns the built-in platform tables. Indicator
// strings are matched case-insensitively against response bodies; a
// negative match always overrides a positive one.
//
// Accuracy is best-effort: platforms change their markup and several
// actively obfuscate existence signals.
func builtinDefinitions() []Definition {
	return []Definition{
		// ── Social media ──────────────────────────────────────────────────
		{
			Name:               "twitter",
			URLTemplate:        "https://twitter.com/{}",
			PositiveIndicators: []string{"Profile", "Joined", "Following", "Followers"},
			NegativeIndicators: []string{"This account doesn’t exist", "Account suspended"},
			Category:           CategorySocial,
		},
		{
			Name:               "instagram",
			URLTemplate:        "https://instagram.com/{}",
			PositiveIndicators: []string{"followers", "following", "posts"},
			NegativeIndicators: []string{"Sorry, this page isn't available"},
			Category:           CategorySocial,
		},
		{
			Name:               "facebook",
			URLTemplate:        "https://facebook.com/{}",
			PositiveIndicators: []string{"Facebook"},
			NegativeIndicators: []string{"This content isn't available"},
			Category:           CategorySocial,
		},
		{
			Name:               "linkedin",
			URLTemplate:        "https://linkedin.com/in/{}",
			PositiveIndicators: []string{"LinkedIn", "connections", "Experience"},
			NegativeIndicators: []string{"This profile doesn't exist"},
			Category:           CategorySocial,
		},
		{
			Name:               "youtube",
			URLTemplate:        "https://youtube.com/@{}",
			PositiveIndicators: []string{"subscribers", "videos", "YouTube"},
			NegativeIndicators: []string{"This channel doesn't exist"},
			Category:           CategorySocial,
		},
		{
			Name:               "tiktok",
			URLTemplate:        "https://tiktok.com/@{}",
			PositiveIndicators: []string{"Following", "Followers", "Likes"},
			NegativeIndicators: []string{"Couldn't find this account"},
			Category:           CategorySocial,
		},
		{
			Name:               "pinterest",
			URLTemplate:        "https://pinterest.com/{}",
			PositiveIndicators: []string{"Pinterest", "pins", "boards"},
			NegativeIndicators: []string{"Sorry, we couldn't find that page"},
			Category:           CategorySocial,
		},
		{
			Name:               "snapchat",
			URLTemplate:        "https://snapchat.com/add/{}",
			PositiveIndicators: []string{"Snapchat"},
			NegativeIndicators: []string{"Oh snap! Something went wrong"},
			Category:           CategorySocial,
		},
		{
			Name:               "twitch",
			URLTemplate:        "https://twitch.tv/{}",
			PositiveIndicators: []string{"Twitch", "followers", "following"},
			NegativeIndicators: []string{"Sorry. Unless you've got a time machine"},
			Category:           CategorySocial,
		},
		{
			Name:               "spotify",
			URLTemplate:        "https://open.spotify.com/user/{}",
			PositiveIndicators: []string{"Spotify", "playlists"},
			NegativeIndicators: []string{"Page not found"},
			Category:           CategorySocial,
		},
		{
			Name:               "medium",
			URLTemplate:        "https://medium.com/@{}",
			PositiveIndicators: []string{"Medium", "followers", "following"},
			NegativeIndicators: []string{"Page not found"},
			Category:           CategorySocial,
		},
		{
			Name:               "behance",
			URLTemplate:        "https://behance.net/{}",
			PositiveIndicators: []string{"Behance", "projects", "followers"},
			NegativeIndicators: []string{"Page Not Found"},
			Category:           CategorySocial,
		},
		{
			Name:               "dribbble",
			URLTemplate:        "https://dribbble.com/{}",
			PositiveIndicators: []string{"Dribbble", "shots", "followers"},
			NegativeIndicators: []string{"Page not found"},
			Category:           CategorySocial,
		},
		{
			Name:               "vimeo",
			URLTemplate:        "https://vimeo.com/{}",
			PositiveIndicators: []string{"Vimeo", "videos", "followers"},
			NegativeIndicators: []string{"Page not found"},
			Category:           CategorySocial,
		},
		{
			Name:               "soundcloud",
			URLTemplate:        "https://soundcloud.com/{}",
			PositiveIndicators: []string{"SoundCloud", "followers", "following"},
			NegativeIndicators: []string{"We can't find that user"},
			Category:           CategorySocial,
		},
		{
			Name:               "tumblr",
			URLTemplate:        "https://{}.tumblr.com",
			PositiveIndicators: []string{"Tumblr"},
			NegativeIndicators: []string{"There's nothing here"},
			Category:           CategorySocial,
		},
		{
			Name:               "flickr",
			URLTemplate:        "https://flickr.com/people/{}",
			PositiveIndicators: []string{"Flickr", "photos"},
			NegativeIndicators: []string{"Page not found"},
			Category:           CategorySocial,
		},

		// ── Developer platforms ───────────────────────────────────────────
		{
			Name:               "github",
			URLTemplate:        "https://github.com/{}",
			PositiveIndicators: []string{"GitHub", "repositories", "followers"},
			NegativeIndicators: []string{"Not Found"},
			Category:           CategoryDeveloper,
		},
		{
			Name:               "gitlab",
			URLTemplate:        "https://gitlab.com/{}",
			PositiveIndicators: []string{"GitLab", "projects", "contributions"},
			NegativeIndicators: []string{"Page not found"},
			Category:           CategoryDeveloper,
		},
		{
			Name:               "bitbucket",
			URLTemplate:        "https://bitbucket.org/{}",
			PositiveIndicators: []string{"Bitbucket", "repositories"},
			NegativeIndicators: []string{"Page not found"},
			Category:           CategoryDeveloper,
		},
		{
			Name:               "stackoverflow",
			URLTemplate:        "https://stackoverflow.com/users/{}",
			PositiveIndicators: []string{"Stack Overflow", "reputation", "answers"},
			NegativeIndicators: []string{"User not found"},
			Category:           CategoryDeveloper,
		},
		{
			Name:               "codepen",
			URLTemplate:        "https://codepen.io/{}",
			PositiveIndicators: []string{"CodePen", "pens", "followers"},
			NegativeIndicators: []string{"Page not found"},
			Category:           CategoryDeveloper,
		},
		{
			Name:               "replit",
			URLTemplate:        "https://replit.com/@{}",
			PositiveIndicators: []string{"Replit", "repls"},
			NegativeIndicators: []string{"Page not found"},
			Category:           CategoryDeveloper,
		},
		{
			Name:               "devto",
			URLTemplate:        "https://dev.to/{}",
			PositiveIndicators: []string{"DEV Community", "posts", "followers"},
			NegativeIndicators: []string{"404"},
			Category:           CategoryDeveloper,
		},
		{
			Name:               "hackerone",
			URLTemplate:        "https://hackerone.com/{}",
			PositiveIndicators: []string{"HackerOne", "reputation", "reports"},
			NegativeIndicators: []string{"Page not found"},
			Category:           CategoryDeveloper,
		},
		{
			Name:               "bugcrowd",
			URLTemplate:        "https://bugcrowd.com/{}",
			PositiveIndicators: []string{"Bugcrowd", "researcher"},
			NegativeIndicators: []string{"Page not found"},
			Category:           CategoryDeveloper,
		},
		{
			Name:               "kaggle",
			URLTemplate:        "https://kaggle.com/{}",
			PositiveIndicators: []string{"Kaggle", "competitions", "datasets"},
			NegativeIndicators: []string{"Page not found"},
			Category:           CategoryDeveloper,
		},
		{
			Name:               "dockerhub",
			URLTemplate:        "https://hub.docker.com/u/{}",
			PositiveIndicators: []string{"Docker Hub", "repositories"},
			NegativeIndicators: []string{"Page not found"},
			Category:           CategoryDeveloper,
		},
		{
			Name:               "npm",
			URLTemplate:        "https://npmjs.com/~{}",
			PositiveIndicators: []string{"npm", "packages"},
			NegativeIndicators: []string{"Page not found"},
			Category:           CategoryDeveloper,
		},
		{
			Name:               "pypi",
			URLTemplate:        "https://pypi.org/user/{}",
			PositiveIndicators: []string{"PyPI", "packages"},
			NegativeIndicators: []string{"Page not found"},
			Category:           CategoryDeveloper,
		},

		// ── Gaming platforms ──────────────────────────────────────────────
		{
			Name:               "steam",
			URLTemplate:        "https://steamcommunity.com/id/{}",
			PositiveIndicators: []string{"Steam", "games", "profile"},
			NegativeIndicators: []string{"The specified profile could not be found"},
			Category:           CategoryGaming,
		},
		{
			Name:               "xbox",
			URLTemplate:        "https://xboxgamertag.com/search/{}",
			PositiveIndicators: []string{"Xbox", "gamertag"},
			NegativeIndicators: []string{"Gamertag not found"},
			Category:           CategoryGaming,
		},
		{
			Name:               "playstation",
			URLTemplate:        "https://psnprofiles.com/{}",
			PositiveIndicators: []string{"PSN", "trophies", "games"},
			NegativeIndicators: []string{"User not found"},
			Category:           CategoryGaming,
		},
		{
			Name:               "epic",
			URLTemplate:        "https://fortnitetracker.com/profile/all/{}",
			PositiveIndicators: []string{"Epic", "stats"},
			NegativeIndicators: []string{"Player not found"},
			Category:           CategoryGaming,
		},
		{
			Name:               "minecraft",
			URLTemplate:        "https://namemc.com/profile/{}",
			PositiveIndicators: []string{"Minecraft", "UUID"},
			NegativeIndicators: []string{"Profile not found"},
			Category:           CategoryGaming,
		},
		{
			Name:               "roblox",
			URLTemplate:        "https://roblox.com/users/profile?username={}",
			PositiveIndicators: []string{"Roblox", "profile"},
			NegativeIndicators: []string{"User not found"},
			Category:           CategoryGaming,
		},

		// ── Forums and communities ────────────────────────────────────────
		{
			Name:               "reddit",
			URLTemplate:        "https://reddit.com/user/{}",
			PositiveIndicators: []string{"Post Karma", "Comment Karma"},
			NegativeIndicators: []string{"page not found", "Sorry, nobody on Reddit goes by that name"},
			Category:           CategoryForum,
		},
		{
			Name:               "xda",
			URLTemplate:        "https://forum.xda-developers.com/member.php?username={}",
			PositiveIndicators: []string{"XDA", "posts", "thanks"},
			NegativeIndicators: []string{"User not found"},
			Category:           CategoryForum,
		},
		{
			Name:               "disqus",
			URLTemplate:        "https://disqus.com/by/{}",
			PositiveIndicators: []string{"Disqus", "comments"},
			NegativeIndicators: []string{"Page not found"},
			Category:           CategoryForum,
		},
		{
			Name:               "discourse",
			URLTemplate:        "https://meta.discourse.org/u/{}",
			PositiveIndicators: []string{"Discourse", "posts", "topics"},
			NegativeIndicators: []string{"Page not found"},
			Category:           CategoryForum,
		},
		{
			Name:               "hackernews",
			URLTemplate:        "https://news.ycombinator.com/user?id={}",
			PositiveIndicators: []string{"Hacker News", "karma", "submissions"},
			NegativeIndicators: []string{"No such user"},
			Category:           CategoryForum,
		},

		// ── General sites ─────────────────────────────────────────────────
		{
			Name:               "pastebin",
			URLTemplate:        "https://pastebin.com/u/{}",
			PositiveIndicators: []string{"pastebin", "Public Pastes", "Profile"},
			NegativeIndicators: []string{"Unknown User", "Not Found"},
			Category:           CategoryGeneral,
		},
		{
			Name:               "aboutme",
			URLTemplate:        "https://about.me/{}",
			PositiveIndicators: []string{"about.me", "profile"},
			NegativeIndicators: []string{"Page not found"},
			Category:           CategoryGeneral,
		},
		{
			Name:               "gravatar",
			URLTemplate:        "https://gravatar.com/{}",
			PositiveIndicators: []string{"Gravatar", "avatar"},
			NegativeIndicators: []string{"Page not found"},
			Category:           CategoryGeneral,
		},
		{
			Name:               "keybase",
			URLTemplate:        "https://keybase.io/{}",
			PositiveIndicators: []string{"Keybase", "proofs", "keys"},
			NegativeIndicators: []string{"User not found"},
			Category:           CategoryGeneral,
		},
		{
			Name:               "producthunt",
			URLTemplate:        "https://producthunt.com/@{}",
			PositiveIndicators: []string{"Product Hunt", "followers", "following"},
			NegativeIndicators: []string{"Page not found"},
			Category:           CategoryGeneral,
		},
		{
			Name:               "foursquare",
			URLTemplate:        "https://foursquare.com/{}",
			PositiveIndicators: []string{"Foursquare", "check-ins"},
			NegativeIndicators: []string{"Page not found"},
			Category:           CategoryGeneral,
		},
		{
			Name:               "lastfm",
			URLTemplate:        "https://last.fm/user/{}",
			PositiveIndicators: []string{"Last.fm", "scrobbles", "artists"},
			NegativeIndicators: []string{"User not found"},
			Category:           CategoryGeneral,
		},
		{
			Name:               "mixcloud",
			URLTemplate:        "https://mixcloud.com/{}",
			PositiveIndicators: []string{"Mixcloud", "cloudcasts", "followers"},
			NegativeIndicators: []string{"Page not found"},
			Category:           CategoryGeneral,
		},

		// ── Restricted (adult) platforms ──────────────────────────────────
		// Excluded from every hunt unless includeRestricted is set.
		{
			Name:               "pornhub",
			URLTemplate:        "https://pornhub.com/users/{}",
			PositiveIndicators: []string{"profile", "videos", "subscribers"},
			NegativeIndicators: []string{"User not found", "Page not found"},
			Category:           CategoryAdult,
		},
		{
			Name:               "onlyfans",
			URLTemplate:        "https://onlyfans.com/{}",
			PositiveIndicators: []string{"OnlyFans", "profile"},
			NegativeIndicators: []string{"User not found", "Page not found"},
			Category:           CategoryAdult,
		},
		{
			Name:               "chaturbate",
			URLTemplate:        "https://chaturbate.com/{}",
			PositiveIndicators: []string{"chaturbate", "profile"},
			NegativeIndicators: []string{"User not found"},
			Category:           CategoryAdult,
		},
		{
			Name:               "myfreecams",
			URLTemplate:        "https://profiles.myfreecams.com/{}",
			PositiveIndicators: []string{"MyFreeCams", "profile"},
			NegativeIndicators: []string{"Profile not found"},
			Category:           CategoryAdult,
		},
		{
			Name:               "stripchat",
			URLTemplate:        "https://stripchat.com/{}",
			PositiveIndicators: []string{"stripchat", "profile"},
			NegativeIndicators: []string{"User not found"},
			Category:           CategoryAdult,
		},
		{
			Name:               "fetlife",
			URLTemplate:        "https://fetlife.com/users/{}",
			PositiveIndicators: []string{"FetLife", "profile", "kinks"},
			NegativeIndicators: []string{"User not found"},
			Category:           CategoryAdult,
		},
		{
			Name:               "adultfriendfinder",
			URLTemplate:        "https://adultfriendfinder.com/profile/{}",
			PositiveIndicators: []string{"AdultFriendFinder", "profile"},
			NegativeIndicators: []string{"Profile not found", "User not found"},
			Category:           CategoryAdult,
		},
		{
			Name:               "manyvids",
			URLTemplate:        "https://manyvids.com/Profile/{}/Store/Videos/",
			PositiveIndicators: []string{"ManyVids", "profile", "videos"},
			NegativeIndicators: []string{"Profile not found"},
			Category:           CategoryAdult,
		},
	}
}
