package seo

// PageOverride is a sparse set of SEO values for a known page. Empty fields
// leave the caller's Input untouched.
type PageOverride struct {
	Title       string
	Description string
	OGType      string
}

// Page keys with registered overrides.
const (
	PageHome              = "home"
	PageAbout             = "about"
	PageServices          = "services"
	PageDoneForYouSystems = "done-for-you-systems"
	PageVIPStrategyDay    = "vip-strategy-day"
	PageWorkflowAudit     = "workflow-audit"
	PageShop              = "shop"
	PageCommunity         = "community"
	PageContact           = "contact"
	PageResources         = "resources"
)

var pages = map[string]PageOverride{
	PageHome: {
		Title:       "Kady Dennis | AI Operations Consultant for Travel Advisors | Done-For-You & DIY Solutions",
		Description: "AI operations consultant helping travel advisors and small teams automate their business. Choose from done-for-you systems, VIP strategy days, workflow audits, or DIY templates.",
		OGType:      TypeWebsite,
	},
	PageAbout: {
		Title:       "About Kady Dennis | AI Operations Consultant",
		Description: "From travel coordinator to operations consultant. I build systems so travel agents and small businesses don't have to think about them.",
		OGType:      TypeWebsite,
	},
	PageServices: {
		Title:       "Services | AI Operations Consulting for Travel Agents",
		Description: "Done-for-you systems, VIP strategy days, and workflow audits for travel advisors and small businesses. Choose how you want to work together.",
		OGType:      TypeWebsite,
	},
	PageDoneForYouSystems: {
		Title:       "Done-For-You Systems | Full Operations Build for Travel Agencies",
		Description: "Complete operations infrastructure built for you. ClickUp setup, automated workflows, commission tracking—delivered turnkey in 4-6 weeks.",
		OGType:      TypeWebsite,
	},
	PageVIPStrategyDay: {
		Title:       "VIP Strategy Day | One Day Operations Intensive",
		Description: "One intensive day to get complete clarity on your operations. Workflow mapping, bottleneck identification, and a 90-day action plan—delivered in a single focused session.",
		OGType:      TypeWebsite,
	},
	PageWorkflowAudit: {
		Title:       "Workflow Audit | Operations Review & Recommendations",
		Description: "A focused review of your current systems with specific recommendations. Written audit report, priority action list, and a 30-minute walkthrough call—all for $500.",
		OGType:      TypeWebsite,
	},
	PageShop: {
		Title:       "Resources & Templates | Travel Agent Workflow Tools",
		Description: "ClickUp templates, workflow guides, and AI prompt packs for travel agents. Grab what you need and start using it today.",
		OGType:      TypeWebsite,
	},
	PageCommunity: {
		Title:       "Travel Agent Workflows Community | Free Facebook Group",
		Description: "Join 218+ travel agents learning workflows, automation, and AI tools. Free Facebook group with weekly tips, Q&As, and first access to new resources.",
		OGType:      TypeWebsite,
	},
	PageContact: {
		Title:       "Contact | Work with Kady Dennis",
		Description: "Ready to fix your operations? Book a free discovery call or send a message. I respond within 24 hours.",
		OGType:      TypeWebsite,
	},
	PageResources: {
		Title:       "Free Resources | Travel Agent Workflow Guides",
		Description: "Free guides and resources for travel agents looking to automate their operations and use AI effectively.",
		OGType:      TypeWebsite,
	},
}

// PageSEO returns the registered override for key. ok is false for unknown
// keys, in which case the zero PageOverride is returned.
func PageSEO(key string) (PageOverride, bool) {
	p, ok := pages[key]
	return p, ok
}

// WithOverride returns a copy of in with the non-empty override fields applied.
func (in Input) WithOverride(o PageOverride) Input {
	if o.Title != "" {
		in.Title = o.Title
	}
	if o.Description != "" {
		in.Description = o.Description
	}
	if o.OGType != "" {
		in.OGType = o.OGType
	}
	return in
}
