// Package entity contains the core business objects of the project.
package entity

import "slices"

// JobTitle represents a mentor's current job, restricted to a fixed set.
type JobTitle string

const (
	JobFrontEnd  JobTitle = "Front-end Developer"
	JobBackEnd   JobTitle = "Back-end Developer"
	JobWeb       JobTitle = "Web Developer"
	JobMobile    JobTitle = "Mobile Developer"
	JobFullStack JobTitle = "Full-stack Developer"
)

// JobTitles lists every accepted job title.
var JobTitles = []JobTitle{JobFrontEnd, JobBackEnd, JobWeb, JobMobile, JobFullStack}

// String returns the string representation of the JobTitle.
func (j JobTitle) String() string {
	return string(j)
}

// IsValid checks if the JobTitle is one of the accepted values.
func (j JobTitle) IsValid() bool {
	return slices.Contains(JobTitles, j)
}
