package core

// Entity is a stable identifier shared by the component stores and the physics world
// Zero is never issued and marks "no entity"
type Entity uint64

// NoEntity is the zero entity
const NoEntity Entity = 0
