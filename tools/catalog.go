package tools

// Tool describes one entry of the static security tool catalog. The
// catalog is configuration data; none of these tools are ever executed.
type Tool struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	RequiresApiKey bool   `json:"requiresApiKey"`
}

var catalog = []Tool{
	{ID: "nmap", Name: "Nmap", Description: "Network discovery and security auditing", Category: "network", RequiresApiKey: false},
	{ID: "nuclei", Name: "Nuclei", Description: "Template-based vulnerability scanning", Category: "vulnerability", RequiresApiKey: false},
	{ID: "shodan", Name: "Shodan", Description: "Internet intelligence platform", Category: "intelligence", RequiresApiKey: true},
	{ID: "censys", Name: "Censys", Description: "Internet-wide scanning platform", Category: "intelligence", RequiresApiKey: true},
	{ID: "virustotal", Name: "VirusTotal", Description: "File and URL analysis", Category: "malware", RequiresApiKey: true},
	{ID: "hunterio", Name: "Hunter.io", Description: "Email finding and verification", Category: "intelligence", RequiresApiKey: true},
	{ID: "haveibeenpwned", Name: "HaveIBeenPwned", Description: "Breach data checking", Category: "intelligence", RequiresApiKey: true},
	{ID: "securitytrails", Name: "SecurityTrails", Description: "Domain intelligence", Category: "intelligence", RequiresApiKey: true},
	{ID: "subfinder", Name: "Subfinder", Description: "Subdomain discovery", Category: "reconnaissance", RequiresApiKey: false},
	{ID: "amass", Name: "Amass", Description: "Network mapping and attack surface discovery", Category: "reconnaissance", RequiresApiKey: false},
	{ID: "dirb", Name: "Dirb", Description: "Web content scanner", Category: "web", RequiresApiKey: false},
}

// All returns the full catalog.
func All() []Tool {
	return catalog
}

// ByID returns the tool with the given id, or false when unknown.
func ByID(id string) (Tool, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Tool{}, false
}

// ByCategory returns every tool in the given category.
func ByCategory(category string) []Tool {
	matched := make([]Tool, 0)
	for _, t := range catalog {
		if t.Category == category {
			matched = append(matched, t)
		}
	}
	return matched
}

// Categories returns the distinct category names in catalog order.
func Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, t := range catalog {
		if !seen[t.Category] {
			seen[t.Category] = true
			categories = append(categories, t.Category)
		}
	}
	return categories
}
