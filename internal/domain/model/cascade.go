package model

// Resource names one REST collection that holds data keyed by candidate id.
type Resource string

const (
	ResourceQualifications     Resource = "qualifications"
	ResourceUserSkills         Resource = "user_skills"
	ResourceUserCertifications Resource = "user_certifications"
	ResourcePersonalDetails    Resource = "personaldetails"
	ResourceCandidates         Resource = "candidates"
)

// CascadeOrder is the order in which a candidate's records are deleted. The
// API has no server-side cascade, so dependents go first and the candidate
// record, the key the UI indexes by, goes last.
var CascadeOrder = []Resource{
	ResourceQualifications,
	ResourceUserSkills,
	ResourceUserCertifications,
	ResourcePersonalDetails,
	ResourceCandidates,
}
