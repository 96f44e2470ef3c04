package database

import (
	"database/sql"
	"sync"

	"github.com/heberxp77/AsistenciaWeb/app/models"
	"github.com/heberxp77/AsistenciaWeb/app/reports"
)

// LoadSnapshot fetches every collection the reporting pipeline depends on.
// All seven queries are fired together and the snapshot is returned only
// once the last one has finished, so derived computations never observe
// partial data.
func LoadSnapshot(db *sql.DB) (*reports.Snapshot, error) {
	snap := &reports.Snapshot{}

	var wg sync.WaitGroup
	errs := make([]error, 7)

	load := func(i int, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = fn()
		}()
	}

	load(0, func() (err error) { snap.Campuses, err = GetAllCampuses(db); return })
	load(1, func() (err error) { snap.Schools, err = GetAllSchools(db); return })
	load(2, func() (err error) { snap.Programs, err = GetAllPrograms(db); return })
	load(3, func() (err error) { snap.Groups, err = GetAllClassGroups(db); return })
	load(4, func() (err error) { snap.Students, err = GetAllStudents(db); return })
	load(5, func() (err error) { snap.Teachers, err = GetAllUsers(db, models.RoleTeacher); return })
	load(6, func() (err error) { snap.Records, err = GetAllAttendanceRecords(db); return })

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return snap, nil
}
