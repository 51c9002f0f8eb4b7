package user

import "github.com/georgemunganga/retail/internal/database"

const userColumns = `userID, name, password, latitude, longitude, type`

// scanUser maps a row selected with userColumns.
func scanUser(row database.Row) (*User, error) {
	u := &User{}
	var role string
	if err := row.Scan(&u.ID, &u.Name, &u.PasswordHash, &u.Location.Lat, &u.Location.Lon, &role); err != nil {
		return nil, err
	}
	u.Role = ParseRole(role)
	return u, nil
}
