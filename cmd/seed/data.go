// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import "github.com/MKhiriev/course-keeper/models"

const demoPassword = "123456"

var demoStudents = []struct{ name, email string }{
	{"Ana Souza", "ana.souza@example.com"},
	{"Bruno Lima", "bruno.lima@example.com"},
	{"Carla Mendes", "carla.mendes@example.com"},
	{"Diego Rocha", "diego.rocha@example.com"},
	{"Elisa Costa", "elisa.costa@example.com"},
	{"Felipe Alves", "felipe.alves@example.com"},
	{"Gabriela Reis", "gabriela.reis@example.com"},
	{"Henrique Dias", "henrique.dias@example.com"},
	{"Isabela Nunes", "isabela.nunes@example.com"},
}

func strPtr(s string) *string { return &s }

// demoData returns nine students, one instructor, three courses and one
// enrollment in each course.
func demoData() models.SeedData {
	data := models.SeedData{
		Users: []models.SeedUser{{
			Name:     "Paula Martins",
			Email:    "instructor@example.com",
			Password: demoPassword,
			Role:     models.RoleInstructor,
		}},
		Courses: []models.NewCourse{
			{Title: "Introduction to Go", Description: strPtr("Types, functions and packages.")},
			{Title: "Concurrency Patterns", Description: strPtr("Goroutines, channels and errgroup.")},
			{Title: "PostgreSQL for Developers", Description: strPtr("Schemas, indexes and queries.")},
		},
	}

	for _, s := range demoStudents {
		data.Users = append(data.Users, models.SeedUser{
			Name:     s.name,
			Email:    s.email,
			Password: demoPassword,
			Role:     models.RoleStudent,
		})
	}

	for i, c := range data.Courses {
		data.Enrollments = append(data.Enrollments, models.SeedEnrollment{
			Email:       demoStudents[i].email,
			CourseTitle: c.Title,
		})
	}

	return data
}
