// Package database provides the durable resources the entity store writes
// through to. Each entity kind maps to one named resource holding the whole
// collection as a JSON array; a flush replaces the resource's contents in
// full. Backends: plain files (default) or a MongoDB collection.
package database

// Resource is a single named durable blob. Load returns the current contents,
// creating the resource empty if it does not exist yet. Flush atomically
// replaces the contents; concurrent flushes of the same resource are
// serialized by the implementation.
type Resource interface {
	Name() string
	Load() ([]byte, error)
	Flush(data []byte) error
}

// Resources groups the four backing resources, one per entity kind.
type Resources struct {
	Products Resource
	Users    Resource
	Carts    Resource
	Orders   Resource
}

const (
	productsFile = "products.json"
	usersFile    = "users.json"
	cartsFile    = "carts.json"
	ordersFile   = "orders.json"
)
