package effects

import "time"

// PageLoader 页面加载完成后的入场动画编排
//
// Load 之后延迟 delay，再按 index*stagger 依次标记各区块入场。
type PageLoader struct {
	timeline *Timeline
	delay    time.Duration
	stagger  time.Duration
	sections []string
	loaded   bool
	entered  map[string]time.Duration
}

// NewPageLoader 创建入场编排
func NewPageLoader(tl *Timeline, delay, stagger time.Duration, sections ...string) *PageLoader {
	return &PageLoader{
		timeline: tl,
		delay:    delay,
		stagger:  stagger,
		sections: sections,
		entered:  make(map[string]time.Duration),
	}
}

// Load 标记页面已加载并预约入场动画；重复调用无效
func (p *PageLoader) Load() {
	if p.loaded {
		return
	}
	p.loaded = true
	p.timeline.After(p.delay, func() {
		for i, id := range p.sections {
			p.timeline.After(time.Duration(i)*p.stagger, func() {
				p.entered[id] = p.timeline.Now()
			})
		}
	})
}

// Loaded 页面是否已加载
func (p *PageLoader) Loaded() bool { return p.loaded }

// Entered 区块是否已入场，以及入场时刻
func (p *PageLoader) Entered(id string) (time.Duration, bool) {
	at, ok := p.entered[id]
	return at, ok
}
