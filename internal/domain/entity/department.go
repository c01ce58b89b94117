package entity

// Department agrupa usuarios para la pantalla de selección del login.
// Solo lectura desde este sistema; se administra externamente.
type Department struct {
	ID   string
	Name string
}
