package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kshitij2201/erp-neitem-updated-sub010/app/config"
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/database"
)

func main() {
	email := flag.String("email", "", "staff email")
	password := flag.String("password", "", "initial password")
	firstName := flag.String("first", "", "first name")
	lastName := flag.String("last", "", "last name")
	role := flag.String("role", "accountant", "role name (admin, accountant)")
	flag.Parse()

	if *email == "" || *password == "" || *firstName == "" {
		flag.Usage()
		os.Exit(1)
	}

	// Initialize database connection
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	userID, err := database.CreateUser(db, *email, *password, *firstName, *lastName, *role)
	if err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s %s (%s) id=%s role=%s\n", *firstName, *lastName, *email, userID, *role)
}
