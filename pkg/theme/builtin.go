package theme

// builtinThemes is the static catalog shipped with the editor, in picker order.
var builtinThemes = []Definition{
	{
		ID: "kore-default", Name: "Kore Default", Category: CategoryBrand,
		Header: Zone{
			BG: "#004EEB", FG: "#FFFFFF",
			BG50: "#EFF4FF", BG100: "#D1E0FF", BG200: "#B2CCFF", BG300: "#84ADFF",
			FG200: "#00359E", TextDark: "#101828", TextLight: "#FFFFFF", Primary600: "#004EEB",
		},
		Body: Zone{
			BG: "#FFFFFF", FG: "#101828",
			BG50: "#F9FAFB", BG100: "#F2F4F7", BG200: "#EAECF0",
			FG200: "#344054", TextDark: "#101828", TextLight: "#667085", Primary600: "#004EEB",
		},
		Footer: Zone{
			BG: "#F9FAFB", FG: "#475467",
			BG100: "#F2F4F7", BG200: "#EAECF0",
			TextDark: "#101828", Primary600: "#004EEB",
		},
	},
	{
		ID: "kore-midnight", Name: "Kore Midnight", Category: CategoryBrand,
		Header: Zone{
			BG: "#002266", FG: "#FFFFFF",
			BG200: "#B2CCFF", FG200: "#002266", Primary600: "#528BFF",
		},
		Body: Zone{
			BG: "#FFFFFF", FG: "#1D2939",
			BG50: "#EFF4FF", BG100: "#D1E0FF", FG200: "#344054", Primary600: "#0040C1",
		},
		Footer: Zone{
			BG: "#002266", FG: "#D1E0FF",
			BG200: "#00359E", FG200: "#FFFFFF",
		},
	},
	{
		ID: "kore-sky", Name: "Kore Sky", Category: CategoryBrand,
		Header: Zone{
			BG: "#EFF4FF", FG: "#00359E",
			BG100: "#D1E0FF", BG200: "#B2CCFF", FG200: "#0040C1", Primary600: "#004EEB",
		},
		Body:   Zone{BG: "#FFFFFF", FG: "#101828", BG50: "#F5F8FF", Primary600: "#004EEB"},
		Footer: Zone{BG: "#EFF4FF", FG: "#0040C1", FG200: "#00359E"},
	},
	{
		ID: "paper", Name: "Paper", Category: CategoryNeutral,
		Header: Zone{BG: "#FFFFFF", FG: "#101828"},
		Body:   Zone{BG: "#FFFFFF", FG: "#344054"},
		Footer: Zone{BG: "#FFFFFF", FG: "#667085"},
	},
	{
		ID: "slate", Name: "Slate", Category: CategoryNeutral,
		Header: Zone{
			BG: "#344054", FG: "#FFFFFF",
			BG50: "#F9FAFB", BG100: "#F2F4F7", BG200: "#EAECF0", BG300: "#D0D5DD",
			FG200: "#1D2939", Primary600: "#475467",
		},
		Body: Zone{
			BG: "#F9FAFB", FG: "#1D2939",
			BG200: "#EAECF0", FG200: "#475467", TextLight: "#98A2B3", Primary600: "#344054",
		},
		Footer: Zone{BG: "#EAECF0", FG: "#475467", BG200: "#D0D5DD"},
	},
	{
		ID: "charcoal", Name: "Charcoal", Category: CategoryNeutral,
		Header: Zone{
			BG: "#101828", FG: "#F9FAFB",
			BG200: "#EAECF0", FG200: "#1D2939", TextDark: "#101828", TextLight: "#F9FAFB",
		},
		Body: Zone{
			BG: "#1D2939", FG: "#F2F4F7",
			BG200: "#EAECF0", FG200: "#344054", TextLight: "#F2F4F7", Primary600: "#84ADFF",
		},
		Footer: Zone{BG: "#101828", FG: "#98A2B3"},
	},
	{
		ID: "sunset", Name: "Sunset", Category: CategoryColorful,
		Header: Zone{
			BG: "#DC6803", FG: "#FFFFFF",
			BG50: "#FFFAEB", BG100: "#FEF0C7", BG200: "#FEDF89", BG300: "#FEC84B",
			FG200: "#93370D", Primary600: "#B54708",
		},
		Body: Zone{
			BG: "#FFFAEB", FG: "#7A2E0E",
			BG200: "#FEDF89", FG200: "#93370D", Primary600: "#DC6803",
		},
		Footer: Zone{BG: "#7A2E0E", FG: "#FEF0C7", BG200: "#93370D", FG200: "#FFFAEB"},
	},
	{
		ID: "forest", Name: "Forest", Category: CategoryColorful,
		Header: Zone{
			BG: "#039855", FG: "#FFFFFF",
			BG50: "#ECFDF3", BG100: "#D1FADF", BG200: "#A6F4C5", BG300: "#6CE9A6",
			FG200: "#05603A", TextDark: "#054F31", Primary600: "#039855",
		},
		Body: Zone{
			BG: "#ECFDF3", FG: "#054F31",
			BG200: "#A6F4C5", FG200: "#05603A", Primary600: "#039855",
		},
		Footer: Zone{BG: "#054F31", FG: "#D1FADF", FG200: "#ECFDF3"},
	},
	{
		ID: "grape", Name: "Grape", Category: CategoryColorful,
		Header: Zone{
			BG: "#6938EF", FG: "#FFFFFF",
			BG50: "#F4F3FF", BG100: "#EBE9FE", BG200: "#D9D6FE",
			FG200: "#4A1FB8", Primary600: "#5925DC",
		},
		Body:   Zone{BG: "#FFFFFF", FG: "#27115F", BG200: "#EBE9FE", Primary600: "#6938EF"},
		Footer: Zone{BG: "#F4F3FF", FG: "#5925DC"},
	},
	{
		ID: "coral", Name: "Coral", Category: CategoryColorful,
		Header: Zone{
			BG: "#D92D20", FG: "#FFFFFF",
			BG50: "#FEF3F2", BG200: "#FECDCA", FG200: "#912018", Primary600: "#B42318",
		},
		Body:   Zone{BG: "#FEF3F2", FG: "#7A271A", FG200: "#912018", Primary600: "#D92D20"},
		Footer: Zone{BG: "#FFFFFF", FG: "#B42318", BG200: "#FEE4E2"},
	},
}
