package domain

// RoleAdmin is the only role in the system. The back-office is single-tenant:
// every authenticated principal is the site owner. Kept as a constant rather
// than a role table so the JWT claim shape stays stable if that ever changes.
const RoleAdmin = "admin"
