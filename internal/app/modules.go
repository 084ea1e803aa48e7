package app

import (
	"github.com/vk/contractforge/internal/discovery"
	"github.com/vk/contractforge/modules/flagcheck"
	"github.com/vk/contractforge/modules/reward"
	"github.com/vk/contractforge/modules/threshold"
)

// coreModules is the definitive list of all plugin modules compiled into
// the contractforge binary.
var coreModules = []discovery.Module{
	threshold.Module{},
	flagcheck.Module{},
	reward.Module{},
}
