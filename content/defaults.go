package content

// BannerGradient is the three-stop gold gradient of the logo text
var BannerGradient = [3]string{"#d8a941", "#b47a1a", "#5c3905"}

// TitleDarkenPercent is how far the end stop of a title gradient is darkened
const TitleDarkenPercent = 75

// Default returns the built-in document
func Default() Document {
	return Document{
		Header: Header{
			Logo: "ARCHEUM",
			Links: []Link{
				{Label: "Docs", URL: "https://archeum.dev"},
				{Label: "GitHub", URL: "https://github.com/archeum-dev"},
				{Label: "Discord", URL: "https://discord.gg/cdyPcAzbhH"},
				{Label: "Patreon", URL: "https://patreon.com/archeum"},
			},
		},
		Sections: []Section{
			{
				ID:            "intro",
				Title:         "ARCHEUM",
				Banner:        true,
				Description:   "The decentralized cloud for the next generation of applications.",
				Subtitle:      "Scroll to explore ↓",
				TitleColor:    "#ffffff",
				SubtitleColor: "#00f0ff",
			},
			{
				ID:            "foundation",
				Title:         "The Foundation",
				Description:   "Anchored on Ethereum. Secure, immutable, and decentralized trust at Archeum's core.",
				TitleColor:    "#ffffff",
				SubtitleColor: "#ffffff",
				Details: []string{
					"Leverages Ethereum's proven technology",
					"Immutable handle registry as a smart contract",
					"Used as the sole source of identity",
					"No single point of failure",
				},
			},
			{
				ID:            "network",
				Title:         "Real-Time Storage",
				Description:   "Run your own Archeum Node - personal cloud storage tied to your identity. People can read and interact with your content in real-time.",
				TitleColor:    "#00f0ff",
				SubtitleColor: "#00f0ff",
				Details: []string{
					"Fast, efficient nodes written in Rust",
					"Fast, secure connections over QUIC",
					"Human-readable handles (@alice)",
					"End-to-end encryption for all data by default",
				},
			},
			{
				ID:            "ecosystem",
				Title:         "The Ecosystem",
				Description:   "Applications run on the edge with data from nodes. No barrier to entry for developers, driving innovation and competition.",
				TitleColor:    "#ff8800",
				SubtitleColor: "#ff8800",
				Details: []string{
					"Free for developers, small one-time cost for users",
					"Apps orchestrate data flows and interactions",
					"No single point of failure, or shutdowns, for any app",
				},
			},
		},
		Final: FinalPage{
			Heading: "Build on Archeum",
			Tagline: "Build once. Run forever.",
			Actions: []Link{
				{Label: "Get Started", URL: "https://github.com/archeum-dev/archeum-sdk"},
				{Label: "Documentation", URL: "https://archeum.dev"},
			},
			Footer: "© 2025 Archeum. All rights reserved.",
		},
	}
}
