package impact

import "github.com/jonathan/ats-tailor/internal/types"

// slot is a metric-driven clause; %s receives the formatted metric
type slot struct {
	key    string
	clause string
}

// angleTemplate describes how one angle frames an achievement
type angleTemplate struct {
	slots    []slot
	fallback string
}

// Metric keys shared by every angle
const (
	scopeKey   = "scope"
	outcomeKey = "outcome"
)

var angleTemplates = map[types.Angle]angleTemplate{
	types.AngleSecurity: {
		slots: []slot{
			{key: "incidents_reduced", clause: "reducing security incidents by %s"},
			{key: "vulnerabilities_remediated", clause: "remediating %s vulnerabilities"},
			{key: "threats_detected", clause: "detecting %s threats"},
			{key: "detection_rate", clause: "raising threat detection rates to %s"},
			{key: "endpoints", clause: "protecting %s endpoints"},
		},
		fallback: "strengthening the organization's security posture",
	},
	types.AngleEfficiency: {
		slots: []slot{
			{key: "time_saved", clause: "saving %s of manual work per week"},
			{key: "automation_percent", clause: "automating %s of routine tasks"},
			{key: "mttr_reduction", clause: "cutting mean time to respond by %s"},
			{key: "tickets_reduced", clause: "reducing ticket volume by %s"},
			{key: "process_improvement", clause: "improving process efficiency by %s"},
		},
		fallback: "streamlining security operations and reducing manual effort",
	},
	types.AngleTeam: {
		slots: []slot{
			{key: "team_size", clause: "leading a team of %s"},
			{key: "people_trained", clause: "training %s team members"},
			{key: "awareness_improvement", clause: "improving security awareness scores by %s"},
			{key: "stakeholders", clause: "coordinating with %s stakeholders"},
		},
		fallback: "building team capability through hands-on knowledge sharing",
	},
	types.AngleBusiness: {
		slots: []slot{
			{key: "cost_savings", clause: "saving %s annually"},
			{key: "revenue_impact", clause: "supporting %s in revenue"},
			{key: "roi", clause: "delivering %s ROI"},
			{key: "budget", clause: "managing a %s budget"},
			{key: "compliance_score", clause: "achieving a %s compliance score"},
		},
		fallback: "reducing organizational risk and supporting business objectives",
	},
}
