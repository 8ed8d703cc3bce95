package pages

const (
	PAGE_L1_ENTRY   string = "page_entry"
	PAGE_L1_ENCRYPT string = "page_encrypt"
	PAGE_L1_DECRYPT string = "page_decrypt"
	PAGE_L1_READ    string = "page_read"
)

var Entry = struct {
	MENU  string
	HELP  string
	ABOUT string
}{
	MENU:  "page_menu",
	HELP:  "page_help",
	ABOUT: "page_about",
}

var Interaction = struct {
	FILES      string
	METHOD     string
	PASSPHRASE string
	RESULT     string
	READ       string
}{
	FILES:      "page_files",
	METHOD:     "page_method",
	PASSPHRASE: "page_passphrase",
	RESULT:     "page_result",
	READ:       "page_read_text",
}

type Tip struct {
	ShortCut    string
	Label       string
	Description string
}

var interactionTips = map[string][]*Tip{
	Interaction.FILES: {
		{
			ShortCut: "",
			Label:    "Start Typing to Search",
		},
		{
			ShortCut: "",
			Label:    "Use Arrow Keys to Navigate Tree",
		},
		{
			ShortCut: "Alt+B",
			Label:    "Go Back",
		},
		{
			ShortCut: "Alt+H",
			Label:    "Toggle Hidden Files",
		},
		{
			ShortCut: "Esc",
			Label:    "Collapse Tree",
		},
	},
	Interaction.METHOD: {
		{
			ShortCut: "Enter",
			Label:    "Select Method",
		},
		{
			ShortCut: "Alt+B",
			Label:    "Go Back",
		},
	},
	Interaction.PASSPHRASE: {
		{
			ShortCut: "Tab",
			Label:    "Next Field",
		},
		{
			ShortCut: "Alt+S",
			Label:    "Show Passphrase",
		},
		{
			ShortCut: "Alt+B",
			Label:    "Go Back",
		},
	},
	Interaction.RESULT: {
		{
			ShortCut: "Alt+M",
			Label:    "Main Menu",
		},
		{
			ShortCut: "Alt+A",
			Label:    "Another File",
		},
	},
	Interaction.READ: {
		{
			ShortCut: "",
			Label:    "Use Arrow Keys to Scroll",
		},
		{
			ShortCut: "Alt+M",
			Label:    "Main Menu",
		},
		{
			ShortCut: "Alt+A",
			Label:    "Another File",
		},
	},
}

// map[PAGE_L1_NAME][PAGE_L2_NAME][]*Tip{}
var TipsMap = map[string]map[string][]*Tip{
	PAGE_L1_ENTRY: {
		Entry.MENU: []*Tip{
			{
				ShortCut: "1-5",
				Label:    "Jump to Item",
			},
			{
				ShortCut: "q",
				Label:    "Quit",
			},
		},
		Entry.HELP: []*Tip{
			{
				ShortCut: "Alt+B",
				Label:    "Go Back",
			},
		},
		Entry.ABOUT: []*Tip{
			{
				ShortCut: "Alt+B",
				Label:    "Go Back",
			},
		},
	},
	PAGE_L1_ENCRYPT: interactionTips,
	PAGE_L1_DECRYPT: interactionTips,
	PAGE_L1_READ:    interactionTips,
}
