package timeconv

import "time"

//Option converter option
type Option func(c *Converter)

//Options represents converter options
type Options []Option

//Apply applies options
func (o Options) Apply(c *Converter) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(c)
	}
}

//WithZone sets the zone used when a conversion is given a nil zone
func WithZone(zone *time.Location) Option {
	return func(c *Converter) {
		c.zone = zone
	}
}
