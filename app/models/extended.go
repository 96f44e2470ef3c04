package models

// Read models for list screens. Base entities stay free of presentation
// fields; these are produced by joining against the reference collections.

// ClassGroupWithDetails is a class group plus resolved display data
type ClassGroupWithDetails struct {
	ClassGroup
	ProgramName  string `json:"programName"`
	SchoolName   string `json:"schoolName"`
	CampusName   string `json:"campusName"`
	TeacherName  string `json:"teacherName"`
	StudentCount int    `json:"studentCount"`
}

// JustificationWithDetails is a justification plus resolved display data
type JustificationWithDetails struct {
	Justification
	StudentName   string           `json:"studentName"`
	StudentNumber string           `json:"studentNumber"`
	GroupName     string           `json:"groupName"`
	RecordDate    string           `json:"recordDate"`
	RecordStatus  AttendanceStatus `json:"recordStatus"`
}

// AdminStats are the counters on the admin dashboard
type AdminStats struct {
	TotalCampuses int `json:"totalCampuses"`
	TotalSchools  int `json:"totalSchools"`
	TotalPrograms int `json:"totalPrograms"`
	TotalGroups   int `json:"totalGroups"`
	TotalStudents int `json:"totalStudents"`
	TotalTeachers int `json:"totalTeachers"`
}
