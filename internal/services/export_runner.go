// internal/services/export_runner.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"adproof/internal/preview"
	"adproof/internal/storage"
)

// ExportRunner renders every catalog slot to PNG and hands the results to
// object storage. Exports run in the background; the caller gets the slot
// count back immediately and failures land in the notification feed.
type ExportRunner struct {
	studio   *preview.Studio
	store    storage.ObjectStorage
	notifier *Notifier
	wg       sync.WaitGroup
}

func NewExportRunner(studio *preview.Studio, store storage.ObjectStorage, notifier *Notifier) *ExportRunner {
	return &ExportRunner{studio: studio, store: store, notifier: notifier}
}

// ExportAll schedules one export per catalog slot and returns how many were
// scheduled.
func (e *ExportRunner) ExportAll(pixelRatio float64) int {
	instances := preview.Instances(e.studio)
	for _, inst := range instances {
		e.wg.Add(1)
		go func(inst *preview.Instance) {
			defer e.wg.Done()
			e.exportOne(inst, pixelRatio)
		}(inst)
	}
	return len(instances)
}

func (e *ExportRunner) exportOne(inst *preview.Instance, pixelRatio float64) {
	name := inst.FileName()

	data, err := inst.Render(pixelRatio)
	if err != nil {
		log.Printf("Failed to render %s: %v", name, err)
		e.notifier.Error(fmt.Sprintf("export failed for %s: %v", name, err))
		return
	}

	location, err := e.store.Save(context.Background(), "exports/"+name, bytes.NewReader(data), "image/png")
	if err != nil {
		log.Printf("Failed to store %s: %v", name, err)
		e.notifier.Error(fmt.Sprintf("export failed for %s: %v", name, err))
		return
	}

	log.Printf("Exported %s to %s", name, location)
}

// Wait blocks until all scheduled exports finish. Used on shutdown so
// in-flight files are not truncated.
func (e *ExportRunner) Wait() {
	e.wg.Wait()
}
