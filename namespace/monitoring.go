package namespace

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var createCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "treestore_creates_total",
	Help: "The number of nodes created",
})

var removeCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "treestore_removes_total",
	Help: "The number of remove operations that detached a subtree",
})

var setDataCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "treestore_set_data_total",
	Help: "The number of payload writes",
})

var nodeGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "treestore_nodes",
	Help: "Nodes created minus nodes removed, roots excluded",
})
