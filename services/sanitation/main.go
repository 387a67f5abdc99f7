package sanitation

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-co-op/gocron"

	"popdiff/api/models"
)

// file extensions produced by the analysis routes
var artifactExtensions = map[string]bool{
	".png": true,
	".txt": true,
}

type (
	SanitationService struct {
		Initialized bool
		Config      *models.Config
		scheduler   *gocron.Scheduler
	}
)

func NewSanitationService(cfg *models.Config) *SanitationService {
	ss := &SanitationService{
		Initialized: false,
		Config:      cfg,
	}

	ss.Init()

	return ss
}

func (ss *SanitationService) Init() {
	// initialization if necessary
	if ss.Initialized || !ss.Config.Artifacts.SanitationEnabled {
		return
	}

	interval := ss.Config.Artifacts.SanitationIntervalHours
	if interval <= 0 {
		interval = 24
	}

	// - periodically remove heatmaps and result files
	//   older than the configured max age so the
	//   artifact directories don't grow unbounded
	ss.scheduler = gocron.NewScheduler(time.UTC)
	ss.scheduler.Every(interval).Hours().Do(func() {
		fmt.Printf("[%s] - Running artifact cleanup..\n", time.Now())

		maxAge := time.Duration(ss.Config.Artifacts.MaxAgeHours) * time.Hour
		for _, dir := range []string{ss.Config.Artifacts.HeatmapDirectory, ss.Config.Artifacts.ResultsDirectory} {
			removed, err := PurgeArtifacts(dir, maxAge, time.Now())
			if err != nil {
				fmt.Printf("[%s] - Error cleaning %s : %v..\n", time.Now(), dir, err)
				continue
			}
			fmt.Printf("[%s] - Removed %d artifact(s) from %s..\n", time.Now(), len(removed), dir)
		}
	})

	// non-blocking; the scheduler runs in its own goroutine
	ss.scheduler.StartAsync()

	ss.Initialized = true
	fmt.Println("Sanitation Service Initialized ..")
}

func (ss *SanitationService) Stop() {
	if ss.scheduler != nil {
		ss.scheduler.Stop()
	}
	ss.Initialized = false
}

// PurgeArtifacts deletes the generated files directly under dir whose
// modification time is older than maxAge relative to now. A missing
// directory is not an error.
func PurgeArtifacts(dir string, maxAge time.Duration, now time.Time) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	removed := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() || !artifactExtensions[filepath.Ext(entry.Name())] {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return removed, err
		}
		if now.Sub(info.ModTime()) <= maxAge {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			return removed, err
		}
		removed = append(removed, path)
	}

	return removed, nil
}
