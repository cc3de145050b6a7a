package stats

import (
	"context"
	"sync"
	"time"

	"aoe4-sync/core/utils"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// upstreamAliases maps normalised upstream civilization names to reference slugs
// where the two disagree beyond separator folding.
var upstreamAliases = map[string]string{
	"holy_roman_empire":  "hre",
	"zhu_xis_legacy":     "zhuxi",
	"zhu_xi":             "zhuxi",
	"abbasid_dynasty":    "abbasid",
	"delhi_sultanate":    "delhi",
	"the_golden_horde":   "golden_horde",
	"house_of_lancaster": "lancaster",
	"knights_templar":    "templar",
	"macedonian_dynasty": "macedonian",
	"sengoku_daimyo":     "sengoku",
	"tughlaq_dynasty":    "tughlaq",
}

// civIndex maps normalised civilization ids and names to reference slugs.
type civIndex struct {
	slugs map[string]string
	built time.Time
}

func (i *civIndex) resolve(name string) (string, bool) {
	key := utils.NormalizeSlug(name)
	if key == "" {
		return "", false
	}
	if slug, ok := i.slugs[key]; ok {
		return slug, true
	}
	if alias, ok := upstreamAliases[key]; ok {
		slug, ok := i.slugs[alias]
		return slug, ok
	}
	return "", false
}

// civResolver caches the civilization index for ttl and rebuilds it once per expiry.
type civResolver struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time

	mu    sync.RWMutex
	index *civIndex
	sf    singleflight.Group
}

func newCivResolver(db *gorm.DB, ttl time.Duration, now func() time.Time) *civResolver {
	return &civResolver{db: db, ttl: ttl, now: now}
}

func (r *civResolver) fresh(idx *civIndex) bool {
	return idx != nil && r.ttl > 0 && r.now().Sub(idx.built) < r.ttl
}

// get returns the cached index, building it when missing or expired.
func (r *civResolver) get(ctx context.Context) (*civIndex, error) {
	r.mu.RLock()
	idx := r.index
	r.mu.RUnlock()
	if r.fresh(idx) {
		return idx, nil
	}

	v, err, _ := r.sf.Do("civilizations", func() (any, error) {
		r.mu.RLock()
		idx := r.index
		r.mu.RUnlock()
		if r.fresh(idx) {
			return idx, nil
		}

		built, err := r.build(ctx)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.index = built
		r.mu.Unlock()
		return built, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*civIndex), nil
}

func (r *civResolver) build(ctx context.Context) (*civIndex, error) {
	var civs []Civilization
	if err := r.db.WithContext(ctx).Select("id", "name").Find(&civs).Error; err != nil {
		return nil, wrapDataAccess("load civilizations", err)
	}
	idx := &civIndex{slugs: make(map[string]string, len(civs)*2), built: r.now()}
	for _, c := range civs {
		if k := utils.NormalizeSlug(c.Name); k != "" {
			idx.slugs[k] = c.ID
		}
	}
	// ids win over names when both normalise to the same key
	for _, c := range civs {
		idx.slugs[utils.NormalizeSlug(c.ID)] = c.ID
	}
	return idx, nil
}

func (r *civResolver) invalidate() {
	r.mu.Lock()
	r.index = nil
	r.mu.Unlock()
}
