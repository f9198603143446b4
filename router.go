package main

import (
	"techbuddies/biz/adaptor/controller"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizeRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", controller.Ping)

	// 实时聊天入口
	r.GET("/chat", controller.Chat)

	// 群组聊天
	r.POST("/creategroup", controller.CreateGroup)
	r.POST("/sendmessage", controller.SendMessage)

	// 审核状态更新, 三个路径共用同一处理
	r.POST("/UpdateStatus", controller.UpdateStatus)
	r.POST("/UpdateStatus/video", controller.UpdateStatus)
	r.POST("/UpdateStatus/note", controller.UpdateStatus)

	auth := r.Group("/auth")
	{
		// 用户
		auth.POST("/register", controller.Register)
		auth.POST("/login", controller.Login)

		// 课程与选课
		auth.POST("/addCourse", controller.AddCourse)
		auth.POST("/AddEnrolledCourse", controller.AddEnrolledCourse)
		auth.GET("/getAllCourse", controller.GetAllCourses)
		auth.GET("/getAllCourse/:id", controller.GetCoursesByUser)
		auth.GET("/getCourse/:id", controller.GetCourse)
		auth.GET("/getEnrolledCourse/:id", controller.GetEnrolledCourses)

		// 投稿
		auth.POST("/addVideo", controller.AddVideo)
		auth.POST("/addNotes", controller.AddNotes)
		auth.POST("/addDoc", controller.AddDoc)
		auth.POST("/addProject", controller.AddProject)
		auth.POST("/updateDoc", controller.UpdateDoc)

		// 发布列表(仅 Accepted)
		auth.GET("/getVideos/:id", controller.GetVideos)
		auth.GET("/getNotes/:id", controller.GetNotes)
		auth.GET("/getDoc/:id", controller.GetDoc)

		// 作者列表(全部状态)
		auth.GET("/getVideo/:id", controller.GetVideo)
		auth.GET("/getNote/:id", controller.GetNote)
		auth.GET("/getDocs/:id", controller.GetDocs)
		auth.GET("/getProjects/:id", controller.GetProjects)

		// 文档主题
		auth.POST("/createtopics", controller.CreateTopic)
		auth.GET("/topics", controller.GetTopicTitles)
		auth.GET("/topics/:id", controller.GetSubTopics)
	}
}
