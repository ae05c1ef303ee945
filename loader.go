package locgo

import (
	"errors"
	"strconv"

	"github.com/locgo/locgo/icu"
)

// load probes every major in the configured range, newest first. The
// slot index is the probed major; the registered library's own version
// report stays authoritative for everything else, and a disagreement
// between the two is logged but does not block registration.
func (r *Registry) load(opener LibraryOpener) {
	for major := r.max; major >= r.min; major-- {
		lib, err := opener(major)
		if err != nil {
			absent := errors.Is(err, icu.ErrNotInstalled)
			r.logger.LogLibrarySkipped(major, absent, err)
			r.metrics.RecordLibraryLoad(major, err)
			continue
		}

		v := lib.Version()
		if v.Major != major {
			r.logger.LogVersionMismatch(r.mismatchLogLevel,
				"library file for major "+strconv.Itoa(major),
				strconv.Itoa(major), v.String())
		}

		r.slots[major-r.min] = lib
		i18n, uc := lib.FileNames()
		r.logger.LogLibraryLoaded(major, v.String(), i18n, uc)
		r.metrics.RecordLibraryLoad(major, nil)
	}
}
